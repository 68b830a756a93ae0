// Command bptreeshell is an interactive REPL over a single in-process
// ordmap.Map[string, string], for poking at tree shape and behavior by
// hand. It keeps no state beyond the process lifetime except a readline
// history file, mirroring the liner-driven CLI shape used elsewhere in
// the retrieval corpus (Hareesh108-haruDB/cmd/cli) but without any
// networking: every command here is served directly from the in-memory
// map, not relayed to a server.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/mjm918/bptree/bptree"
	"github.com/mjm918/bptree/bptree/ordmap"
)

func strCmp(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func main() {
	m, err := ordmap.New[string, string](strCmp, bptree.Order(8))
	if err != nil {
		fmt.Fprintln(os.Stderr, "bptreeshell: failed to construct map:", err)
		os.Exit(1)
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyFile := filepath.Join(os.TempDir(), ".bptreeshell_history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	fmt.Println("bptreeshell — commands: insert <k> <v>, get <k>, remove <k>, contains <k>, list, dump, depth, count, help, exit")

	for {
		input, err := line.Prompt("bptree> ")
		if err != nil {
			break
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if input == "exit" || input == "quit" {
			break
		}
		runCommand(m, input)
	}

	if f, err := os.Create(historyFile); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}

func runCommand(m *ordmap.Map[string, string], input string) {
	fields := strings.Fields(input)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "help":
		fmt.Println("insert <k> <v>, get <k>, remove <k>, contains <k>, list, dump, depth, count, exit")
	case "insert":
		if len(args) < 2 {
			fmt.Println("usage: insert <k> <v>")
			return
		}
		m.Insert(args[0], strings.Join(args[1:], " "))
		fmt.Println("ok")
	case "get":
		if len(args) != 1 {
			fmt.Println("usage: get <k>")
			return
		}
		if v, ok := m.Get(args[0]); ok {
			fmt.Println(v)
		} else {
			fmt.Println("(not found)")
		}
	case "remove":
		if len(args) != 1 {
			fmt.Println("usage: remove <k>")
			return
		}
		if m.Remove(args[0]) {
			fmt.Println("ok")
		} else {
			fmt.Println("(not found)")
		}
	case "contains":
		if len(args) != 1 {
			fmt.Println("usage: contains <k>")
			return
		}
		fmt.Println(strconv.FormatBool(m.Contains(args[0])))
	case "list":
		m.Range(func(k, v string) bool {
			fmt.Printf("%s = %s\n", k, v)
			return true
		})
	case "dump":
		fmt.Println(m.Tree().Dump(nil, nil))
	case "depth":
		fmt.Println(m.Tree().Depth())
	case "count":
		fmt.Println(m.Len())
	default:
		fmt.Printf("unknown command %q; type 'help'\n", cmd)
	}
}
