package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/corvid-labs/zugzwang"
)

// runUCI reads UCI commands from stdin until `quit`. Search cancellation
// (`stop`) is out of the core's scope; this loop runs each `go` to
// completion since the core exposes no interior-node stop hook.
func runUCI(cfg config) {
	pos, _ := zugzwang.ParseFEN(zugzwang.StartingFEN)
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 1<<20), 1<<20)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "uci":
			fmt.Println("id name zugzwang")
			fmt.Println("id author corvid-labs")
			fmt.Println("uciok")
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			pos, _ = zugzwang.ParseFEN(zugzwang.StartingFEN)
		case "position":
			pos = handlePosition(fields[1:])
		case "go":
			handleGo(pos, fields[1:], cfg)
		case "d":
			fmt.Println(formatPosition(pos))
		case "stop":
			// No interior search hook to cancel; nothing to do once `go`
			// has returned.
		case "quit":
			return
		default:
			log.Warningf("unrecognized command: %s", line)
		}
	}
}

func handlePosition(fields []string) *zugzwang.Position {
	if len(fields) == 0 {
		pos, _ := zugzwang.ParseFEN(zugzwang.StartingFEN)
		return pos
	}

	var pos *zugzwang.Position
	var rest []string
	switch fields[0] {
	case "startpos":
		pos, _ = zugzwang.ParseFEN(zugzwang.StartingFEN)
		rest = fields[1:]
	case "fen":
		end := 1
		for end < len(fields) && fields[end] != "moves" {
			end++
		}
		fen := strings.Join(fields[1:end], " ")
		parsed, err := zugzwang.ParseFEN(fen)
		if err != nil {
			log.Errorf("position fen: %v", err)
			pos, _ = zugzwang.ParseFEN(zugzwang.StartingFEN)
			return pos
		}
		pos = parsed
		rest = fields[end:]
	default:
		pos, _ = zugzwang.ParseFEN(zugzwang.StartingFEN)
		rest = fields
	}

	if len(rest) > 0 && rest[0] == "moves" {
		for _, moveStr := range rest[1:] {
			m, err := zugzwang.ParseUCIMove(pos, moveStr)
			if err != nil {
				log.Errorf("applying move %s: %v", moveStr, err)
				break
			}
			pos.Make(m)
		}
	}
	return pos
}

func handleGo(pos *zugzwang.Position, args []string, cfg config) {
	depth := cfg.Engine.DefaultDepth
	for i := 0; i < len(args); i++ {
		if args[i] == "depth" && i+1 < len(args) {
			if d, err := strconv.Atoi(args[i+1]); err == nil {
				depth = d
			}
		}
	}

	start := time.Now()
	result := zugzwang.AlphaBeta(pos, depth, -zugzwang.MateScore, zugzwang.MateScore)
	elapsed := time.Since(start)

	pvStrings := make([]string, len(result.PV))
	for i, m := range result.PV {
		pvStrings[i] = m.UCI()
	}

	nps := int64(0)
	if elapsed > 0 {
		nps = int64(float64(len(pvStrings)) / elapsed.Seconds())
	}

	fmt.Printf("info depth %d time %d nodes %d nps %d score cp %d pv %s\n",
		depth, elapsed.Milliseconds(), len(pvStrings), nps, result.Score, strings.Join(pvStrings, " "))

	if len(result.PV) > 0 {
		fmt.Printf("bestmove %s\n", result.PV[0].UCI())
	} else {
		fmt.Println("bestmove 0000")
	}
}
