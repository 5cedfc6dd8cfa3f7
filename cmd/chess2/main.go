// Command chess2 is a terminal front end for the chess2 engine: it
// prompts both players for an army, then alternates a human move
// (typed as a pair of algebraic squares, e.g. "e2e4") with an engine
// search.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"go.uber.org/zap"

	chess2 "github.com/robertledoux/chess2"
)

var armyNames = map[chess2.Army]string{
	chess2.Classic:   "Classic",
	chess2.Nemesis:   "Nemesis",
	chess2.Empowered: "Empowered",
	chess2.Reaper:    "Reaper",
	chess2.TwoKings:  "Two Kings",
	chess2.Animals:   "Animals",
}

func chooseArmy(r *bufio.Reader, side string) chess2.Army {
	fmt.Printf("%s player, choose an army:\n", side)
	fmt.Println("1. Classic   2. Nemesis  3. Empowered")
	fmt.Println("4. Reaper    5. Two Kings 6. Animals")
	for {
		fmt.Print("> ")
		input, _ := r.ReadString('\n')
		input = strings.TrimSpace(input)
		switch input {
		case "1", "2", "3", "4", "5", "6":
			return chess2.Army(input[0] - '0')
		}
		fmt.Println("please enter a number from 1 to 6")
	}
}

func printBoard(b chess2.Board) {
	upper := color.New(color.FgWhite, color.Bold)
	lower := color.New(color.FgCyan)
	for row := 2; row < 10; row++ {
		for col := 1; col < 9; col++ {
			p := b[row*10+col]
			switch {
			case p >= 'A' && p <= 'Z':
				upper.Printf("%c ", p)
			case p >= 'a' && p <= 'z':
				lower.Printf("%c ", p)
			default:
				fmt.Print(". ")
			}
		}
		fmt.Println()
	}
}

func main() {
	sessionID := uuid.New().String()
	log, _ := zap.NewDevelopment()
	defer log.Sync()
	log = log.With(zap.String("session", sessionID))

	cfg, err := chess2.LoadConfig("chess2.toml")
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	r := bufio.NewReader(os.Stdin)
	white := chooseArmy(r, "White")
	black := chooseArmy(r, "Black")
	fmt.Printf("White: %s, Black: %s\n", armyNames[white], armyNames[black])

	pos := chess2.StartPosition(white, black)
	searcher := chess2.NewSearcher(log)

	for {
		printBoard(pos.Board)
		valid := false
		for !valid {
			fmt.Print("your move (e.g. e2e4): ")
			input, _ := r.ReadString('\n')
			input = strings.TrimSpace(input)
			if len(input) != 4 {
				continue
			}
			from, ok1 := chess2.ParseSquare(input[0:2])
			to, ok2 := chess2.ParseSquare(input[2:4])
			if !ok1 || !ok2 {
				continue
			}
			want := chess2.Move{From: from, To: to}
			for _, m := range chess2.GenMoves(pos) {
				if m == want {
					pos = chess2.Apply(pos, m)
					valid = true
					break
				}
			}
		}
		for pos.Second {
			if len(chess2.GenMoves(pos)) == 0 {
				pos.Score = 0
				pos.Second = false
				pos = pos.Flip()
				break
			}
			printBoard(pos.Board)
			fmt.Println("bonus Warrior move")
			valid := false
			for !valid {
				fmt.Print("your move (e.g. e2e4): ")
				input, _ := r.ReadString('\n')
				input = strings.TrimSpace(input)
				if len(input) != 4 {
					continue
				}
				from, ok1 := chess2.ParseSquare(input[0:2])
				to, ok2 := chess2.ParseSquare(input[2:4])
				if !ok1 || !ok2 {
					continue
				}
				want := chess2.Move{From: from, To: to}
				for _, m := range chess2.GenMoves(pos) {
					if m == want {
						pos = chess2.Apply(pos, m)
						valid = true
						break
					}
				}
			}
		}

		m, score := searcher.Search(pos, cfg.NodesPerMove)
		if score <= -chess2.MateValue {
			fmt.Println("you won")
			return
		}
		if score >= chess2.MateValue {
			fmt.Println("you lost")
			return
		}
		fmt.Println("engine plays", m)
		pos = chess2.Apply(pos, m)
		for pos.Second {
			if len(chess2.GenMoves(pos)) == 0 {
				pos.Score = 0
				pos.Second = false
				pos = pos.Flip()
				break
			}
			m, _ := searcher.Search(pos, cfg.NodesPerMove)
			fmt.Println("engine bonus Warrior move", m)
			pos = chess2.Apply(pos, m)
		}
	}
}
