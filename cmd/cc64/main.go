/*
File    : cc64/cmd/cc64/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the cc64 compiler. It provides
three modes of operation:
 1. File mode (default): compile the single positional source-text
    argument and print the resulting assembly to stdout.
 2. REPL mode (`cc64 repl`): interactively compile one snippet at a
    time and print its assembly, for exploring code generation output.
 3. Server mode (`cc64 server <port>`): run one REPL session per TCP
    connection, compiling each line the client sends and writing back
    assembly or an error.

This file only supplies the source string and the assembly sink;
all compiling happens in lexer/, parser/, and codegen/.
*/
package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/cc64/repl"
)

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "repl":
			runRepl()
			return
		case "server":
			if len(os.Args) < 3 {
				redColor.Fprintln(os.Stderr, "[USAGE ERROR] missing port for server mode. Usage: cc64 server <port>")
				os.Exit(1)
			}
			runServer(os.Args[2])
			return
		}
	}
	runFileMode(os.Args[1:])
}

// runFileMode takes exactly one positional argument, the source text,
// and prints the resulting assembly to stdout. On failure it prints a
// single error line to stderr and exits 1. -config and -assemble are
// additive conveniences layered on top of that contract.
func runFileMode(args []string) {
	flags := flag.NewFlagSet("cc64", flag.ExitOnError)
	configPath := flags.String("config", "", "path to an optional YAML file overriding calling-convention defaults")
	assemble := flags.Bool("assemble", false, "also assemble and link the output via the system cc, writing it to -o")
	outPath := flags.String("o", "a.out", "output path for -assemble")
	_ = flags.Parse(args)

	positional := flags.Args()
	if len(positional) != 1 {
		redColor.Fprintln(os.Stderr, "[USAGE ERROR] expected exactly one argument: the source text")
		os.Exit(1)
	}
	source := positional[0]

	var fileCfg FileConfig
	if *configPath != "" {
		cfg, err := loadConfig(*configPath)
		if err != nil {
			redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
			os.Exit(1)
		}
		fileCfg = cfg
	}

	asm, err := compile(source, fileCfg.codegenConfig())
	if err != nil {
		redColor.Fprintf(os.Stderr, "[PARSE ERROR] %v\n", err)
		os.Exit(1)
	}

	fmt.Print(asm)

	if *assemble {
		if err := assembleAndLink(asm, *outPath); err != nil {
			redColor.Fprintf(os.Stderr, "[LINK ERROR] %v\n", err)
			os.Exit(1)
		}
		if fileCfg.Verbose {
			cyanColor.Fprintf(os.Stderr, "assembled and linked -> %s\n", *outPath)
		}
	}
}

// runRepl starts an interactive session that compiles one snippet at
// a time, printing its assembly instead of evaluating it.
func runRepl() {
	repler := repl.New()
	repler.Start(os.Stdin, os.Stdout)
}

// runServer listens on port, handing each connection its own
// compile-one-source-string-per-line REPL session.
func runServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("cc64 compile server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

// handleClient runs one REPL session over conn, so each client
// compiles source strings independently of every other connection.
func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("client connected from %s\n", conn.RemoteAddr())
	repler := repl.New()
	repler.Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}
