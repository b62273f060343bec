// Command remotecmd is the interactive client for the bot's UDP command
// listener: every entered line is sent as one admin command datagram.
package main

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"strings"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Provide receiver address, e.g. 127.0.0.1:7455.")
		os.Exit(1)
	}
	addr := os.Args[1]
	if !strings.Contains(addr, ":") {
		addr = "127.0.0.1:" + addr
	}

	conn, err := net.Dial("udp", addr)
	if err != nil {
		fmt.Printf("Cannot reach %s - %v.\n", addr, err)
		os.Exit(1)
	}
	defer conn.Close()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Enter command: ")
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if strings.EqualFold(strings.TrimSpace(line), "exit") {
			return
		}
		if _, err := conn.Write([]byte(line)); err != nil {
			fmt.Printf("Send failed - %v.\n", err)
			continue
		}
		fmt.Printf("Sent command: '%s'.\n", line)
	}
}
