// Package main runs self-play games against the local sim to exercise
// the decision engine, with a terminal UI showing live throughput and
// recent results.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/Simba256/2048/engine"
	"github.com/Simba256/2048/sim"
	tea "github.com/charmbracelet/bubbletea"
)

var totalMoves atomic.Int64
var totalGames atomic.Int64

type GameUpdate struct {
	WorkerID int
	Result   sim.Result
}

type doneMsg struct{}

type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type model struct {
	gamesPlayed int
	moves       int64
	bestTile    int
	undos       int
	startTime   time.Time
	recentGames []string
	updates     chan GameUpdate
}

func initialModel(updates chan GameUpdate) model {
	return model{
		startTime: time.Now(),
		updates:   updates,
	}
}

func waitForUpdate(updates chan GameUpdate) tea.Cmd {
	return func() tea.Msg {
		return <-updates
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(waitForUpdate(m.updates), tickCmd())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case doneMsg:
		return m, tea.Quit
	case TickMsg:
		m.moves = totalMoves.Load()
		return m, tickCmd()
	case GameUpdate:
		m.gamesPlayed++
		if msg.Result.MaxTile > m.bestTile {
			m.bestTile = msg.Result.MaxTile
		}
		if msg.Result.Undo {
			m.undos++
		}
		logMsg := fmt.Sprintf("Worker %d: MaxTile %d, Turns %d", msg.WorkerID, msg.Result.MaxTile, msg.Result.Turns)
		m.recentGames = append([]string{logMsg}, m.recentGames...)
		if len(m.recentGames) > 10 {
			m.recentGames = m.recentGames[:10]
		}
		return m, waitForUpdate(m.updates)
	}
	return m, nil
}

func (m model) View() string {
	duration := time.Since(m.startTime)
	gamesPerSec := float64(m.gamesPlayed) / duration.Seconds()
	movesPerSec := float64(m.moves) / duration.Seconds()
	if duration.Seconds() < 1 {
		gamesPerSec = 0
		movesPerSec = 0
	}

	s := fmt.Sprintf("Games Played: %d\n", m.gamesPlayed)
	s += fmt.Sprintf("Total Moves:  %d\n", m.moves)
	s += fmt.Sprintf("Best Tile:    %d\n", m.bestTile)
	s += fmt.Sprintf("Undo Endings: %d\n", m.undos)
	s += fmt.Sprintf("Duration:     %s\n", duration.Round(time.Second))
	s += fmt.Sprintf("Games/Sec:    %.2f\n", gamesPerSec)
	s += fmt.Sprintf("Moves/Sec:    %.2f\n\n", movesPerSec)

	s += "Recent Games:\n"
	for _, g := range m.recentGames {
		s += g + "\n"
	}

	s += "\nPress q to quit.\n"
	return s
}

func main() {
	workers := flag.Int("workers", 4, "Number of self-play workers")
	maxGames := flag.Int64("max-games", 0, "If > 0, stop after playing this many games (across all workers)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Base seed for game rngs; each game uses seed+n")
	flag.Parse()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	e := engine.New(engine.DefaultConfig())

	updates := make(chan GameUpdate, *workers)

	var seedCounter atomic.Int64
	seedCounter.Store(*seed)

	var workerWG sync.WaitGroup
	for i := 0; i < *workers; i++ {
		workerWG.Add(1)
		go func(workerID int) {
			defer workerWG.Done()
			for {
				select {
				case <-ctx.Done():
					return
				default:
				}

				result := sim.Play(ctx, e, seedCounter.Add(1), func() {
					totalMoves.Add(1)
				})
				total := totalGames.Add(1)
				if *maxGames > 0 && total >= *maxGames {
					cancel()
				}

				// Avoid blocking shutdown if the UI stops consuming.
				select {
				case updates <- GameUpdate{WorkerID: workerID, Result: result}:
				default:
				}
			}
		}(i)
	}

	p := tea.NewProgram(initialModel(updates), tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Send(doneMsg{})
	}()

	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
	cancel()
	workerWG.Wait()

	log.Printf("arena done: games=%d moves=%d", totalGames.Load(), totalMoves.Load())
}
