package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/crm-portal/crm_portal/internal/portal"
)

const usage = `Usage: portal [-server URL] <command> [args]

Commands:
  login               authenticate and store the session
  get <customerId>    look up a customer record
  whoami              show the logged-in user
  logout              clear the stored session
`

func main() {
	serverURL := flag.String("server", envOr("PORTAL_SERVER_URL", "http://localhost:8080"), "portal API base URL")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	sessionPath, err := portal.DefaultSessionPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "resolve session path: %v\n", err)
		os.Exit(1)
	}

	ctrl := portal.NewController(portal.NewClient(*serverURL), portal.NewFileStore(sessionPath))
	ctx := context.Background()

	switch flag.Arg(0) {
	case "login":
		if err := runLogin(ctx, ctrl); err != nil {
			fmt.Fprintf(os.Stderr, "login failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Login successful")
	case "get":
		if flag.NArg() < 2 {
			flag.Usage()
			os.Exit(2)
		}
		runGet(ctx, ctrl, flag.Arg(1))
	case "whoami":
		snap := ctrl.Snapshot()
		if snap.Login != portal.Authenticated {
			fmt.Println("not logged in")
			os.Exit(1)
		}
		fmt.Println(snap.Username)
	case "logout":
		if err := ctrl.Logout(); err != nil {
			fmt.Fprintf(os.Stderr, "logout: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Logged out")
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runLogin(ctx context.Context, ctrl *portal.Controller) error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Username: ")
	username, err := reader.ReadString('\n')
	if err != nil {
		return err
	}

	fmt.Print("Password: ")
	password, err := reader.ReadString('\n')
	if err != nil {
		return err
	}

	return ctrl.Login(ctx, strings.TrimSpace(username), strings.TrimRight(password, "\r\n"))
}

func runGet(ctx context.Context, ctrl *portal.Controller, customerID string) {
	err := ctrl.Search(ctx, customerID)
	snap := ctrl.Snapshot()

	switch snap.Search {
	case portal.Found:
		info := snap.Customer
		fmt.Printf("Client ID:        %s\n", info.ClientID)
		fmt.Printf("DBA:              %s\n", info.Dba)
		fmt.Printf("Legal Name:       %s\n", info.ClientLegalName)
		fmt.Printf("Status:           %s\n", info.Status)
		fmt.Printf("Level:            %s\n", info.Level)
		fmt.Printf("Payment Term:     %s\n", info.PaymentTermID)
		fmt.Printf("Payment Method:   %s\n", info.PaymentMethod)
		fmt.Printf("Compliance Hold:  %s\n", info.ComplianceHold)
		fmt.Printf("Edit Approval:    %s\n", info.EditApproval)
	case portal.NotFound:
		fmt.Println(snap.Message)
		os.Exit(1)
	default:
		if snap.Message != "" {
			fmt.Fprintln(os.Stderr, snap.Message)
		} else if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
