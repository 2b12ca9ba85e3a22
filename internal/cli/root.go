package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

func (a *App) getStatus() string {
	snap := a.session.Snapshot()
	switch {
	case snap.Loading:
		return "(resolving...)"
	case snap.User != nil:
		return fmt.Sprintf("(%s)", snap.User.Email)
	default:
		return ""
	}
}

// Run resolves the persisted credential and then drives the command loop
// until EOF or an explicit exit.
func (a *App) Run(ctx context.Context) {
	if err := a.session.Resolve(ctx); err != nil {
		a.log.Warn(ctx, "startup resolution failed", "error", err)
		fmt.Fprintln(a.out, "Could not restore your session:", err)
	}

	fmt.Fprintln(a.out, "printwatch console (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "printwatch %s> ", a.getStatus())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		if done := a.dispatch(ctx, cmd, args); done {
			return
		}
	}
}

// dispatch runs a single command. It returns true when the loop should end.
func (a *App) dispatch(ctx context.Context, cmd string, args []string) bool {
	switch cmd {
	case "help":
		a.help()

	case "register":
		if err := a.Register(ctx); err != nil {
			a.reportAuthErr(err)
		}
	case "login":
		if err := a.Login(ctx); err != nil {
			a.reportAuthErr(err)
		}
	case "logout":
		if err := a.Logout(ctx); err != nil {
			a.reportErr(ctx, err)
		}
	case "whoami":
		a.Whoami()

	case "status":
		if err := a.Status(ctx); err != nil {
			a.reportErr(ctx, err)
		}
	case "printers":
		if err := a.Printers(ctx); err != nil {
			a.reportErr(ctx, err)
		}
	case "printer":
		id, days, ok := a.printerArgs(args)
		if !ok {
			break
		}
		if err := a.PrinterShow(ctx, id, days); err != nil {
			a.reportErr(ctx, err)
		}
	case "rename":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: rename <id> <new name>")
			break
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintln(a.out, "Usage: rename <id> <new name>")
			break
		}
		if err := a.RenamePrinter(ctx, id, strings.Join(args[1:], " ")); err != nil {
			a.reportErr(ctx, err)
		}
	case "delete":
		id, ok := a.idArg(args, "Usage: delete <id>")
		if !ok {
			break
		}
		if err := a.DeletePrinter(ctx, id); err != nil {
			a.reportErr(ctx, err)
		}

	case "devices":
		if err := a.Devices(ctx); err != nil {
			a.reportErr(ctx, err)
		}
	case "adddevice":
		if err := a.AddDevice(ctx); err != nil {
			a.reportErr(ctx, err)
		}

	case "subnets":
		if err := a.Subnets(ctx); err != nil {
			a.reportErr(ctx, err)
		}
	case "addsubnet":
		if err := a.AddSubnet(ctx); err != nil {
			a.reportErr(ctx, err)
		}
	case "togglesubnet":
		id, ok := a.idArg(args, "Usage: togglesubnet <id>")
		if !ok {
			break
		}
		if err := a.ToggleSubnet(ctx, id); err != nil {
			a.reportErr(ctx, err)
		}
	case "delsubnet":
		id, ok := a.idArg(args, "Usage: delsubnet <id>")
		if !ok {
			break
		}
		if err := a.DeleteSubnet(ctx, id); err != nil {
			a.reportErr(ctx, err)
		}

	case "billing":
		if err := a.Billing(ctx); err != nil {
			a.reportErr(ctx, err)
		}
	case "upgrade":
		if len(args) == 0 {
			fmt.Fprintln(a.out, "Usage: upgrade <tier> [monthly|yearly]")
			break
		}
		period := "monthly"
		if len(args) > 1 {
			period = args[1]
		}
		if err := a.Upgrade(ctx, args[0], period); err != nil {
			a.reportErr(ctx, err)
		}

	case "exit", "quit":
		fmt.Fprintln(a.out, "Bye!")
		return true

	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}
	return false
}

func (a *App) help() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands:")
		fmt.Fprintln(a.out, "  status                        fleet overview")
		fmt.Fprintln(a.out, "  printers                      list printers")
		fmt.Fprintln(a.out, "  printer <id> [days]           printer detail with metrics history (7/30/90)")
		fmt.Fprintln(a.out, "  rename <id> <name>            rename a printer")
		fmt.Fprintln(a.out, "  delete <id>                   delete a printer and its metrics")
		fmt.Fprintln(a.out, "  devices / adddevice           manage proxy devices")
		fmt.Fprintln(a.out, "  subnets / addsubnet           manage remote subnets")
		fmt.Fprintln(a.out, "  togglesubnet <id>             enable or disable a subnet")
		fmt.Fprintln(a.out, "  delsubnet <id>                delete a subnet")
		fmt.Fprintln(a.out, "  billing / upgrade <tier>      plans and checkout")
		fmt.Fprintln(a.out, "  whoami, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: register, login, exit")
	}
}

func (a *App) idArg(args []string, usage string) (int, bool) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, usage)
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(a.out, usage)
		return 0, false
	}
	return id, true
}

func (a *App) printerArgs(args []string) (id, days int, ok bool) {
	id, ok = a.idArg(args, "Usage: printer <id> [days]")
	if !ok {
		return 0, 0, false
	}
	days = 7
	if len(args) > 1 {
		d, err := strconv.Atoi(args[1])
		if err != nil || (d != 7 && d != 30 && d != 90) {
			fmt.Fprintln(a.out, "Day range must be 7, 30 or 90")
			return 0, 0, false
		}
		days = d
	}
	return id, days, true
}
