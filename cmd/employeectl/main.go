package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.SetFlags(0)
		log.Fatalf("employeectl: %v", err)
	}
}

const usage = `usage: employeectl [-config path] <command> [flags]

commands:
  login -email -password   start a session
  logout                   end the session
  whoami                   show the session state
  seed                     load sample data if missing or outdated
  list [filters]           list employees
  print [filters]          printable listing with title
  export -o file [filters] write an .xlsx workbook
  stats                    show totals
  recent [-n]              most recently created employees
  get <id>                 show one employee
  add -name -gender -dob -state [-inactive] [-image]
  update <id> [-name -gender -dob -state -active -image]
  toggle <id>              flip active/inactive
  delete <id>              remove an employee

filters: -search text -gender Male|Female|Other -status active|inactive
`

func printUsage() {
	fmt.Fprint(os.Stderr, usage)
}
