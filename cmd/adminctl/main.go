// Command adminctl is a small console client for the dicer-admin API.
//
// Usage:
//
//	adminctl [-addr http://localhost:8080] [-token TOKEN] <command> [flags]
//
// The admin token is read from the -token flag or the DICER_ADMIN_TOKEN
// environment variable. Obtain one with the login command.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dicerhq/dicer-admin/internal/adapter"
	"github.com/dicerhq/dicer-admin/models"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "base URL of the dicer-admin server")
	token := flag.String("token", "", "admin token (defaults to DICER_ADMIN_TOKEN)")
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	client := adapter.NewHTTPAdminClient(adapter.HTTPClientConfig{BaseURL: *addr})
	if *token != "" {
		client.SetToken(*token)
	} else if envToken := os.Getenv("DICER_ADMIN_TOKEN"); envToken != "" {
		client.SetToken(envToken)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, client, flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "adminctl: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, client adapter.AdminClient, command string, args []string) error {
	switch command {
	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		email := fs.String("email", "", "administrator email")
		password := fs.String("password", "", "administrator password")
		fs.Parse(args)

		token, err := client.Login(ctx, *email, *password)
		if err != nil {
			return err
		}
		fmt.Println(token)
		return nil

	case "verify":
		email, err := client.Verify(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("token valid for %s\n", email)
		return nil

	case "signup":
		fs := flag.NewFlagSet("signup", flag.ExitOnError)
		name := fs.String("name", "", "user display name")
		phone := fs.String("phone", "", "user phone")
		fs.Parse(args)

		account, err := client.Signup(ctx, *name, *phone)
		if err != nil {
			return err
		}
		return printJSON(account)

	case "get":
		fs := flag.NewFlagSet("get", flag.ExitOnError)
		id := fs.Int64("id", 0, "user id")
		fs.Parse(args)

		account, err := client.GetAccount(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(account)

	case "list":
		fs := flag.NewFlagSet("list", flag.ExitOnError)
		limit := fs.Uint64("limit", 0, "page size")
		offset := fs.Uint64("offset", 0, "page offset")
		fs.Parse(args)

		accounts, total, err := client.ListAccounts(ctx, *limit, *offset)
		if err != nil {
			return err
		}
		fmt.Printf("total: %d\n", total)
		return printJSON(accounts)

	case "status":
		fs := flag.NewFlagSet("status", flag.ExitOnError)
		id := fs.Int64("id", 0, "user id")
		status := fs.String("status", "", "Active or Inactive")
		device := fs.String("device", "", "device id to register on activation")
		fs.Parse(args)

		account, err := client.SetStatus(ctx, *id, *status, *device)
		if err != nil {
			return err
		}
		return printJSON(account)

	case "add-device", "remove-device":
		fs := flag.NewFlagSet(command, flag.ExitOnError)
		id := fs.Int64("id", 0, "user id")
		device := fs.String("device", "", "device id")
		fs.Parse(args)

		mutate := client.AddDeviceID
		if command == "remove-device" {
			mutate = client.RemoveDeviceID
		}
		account, err := mutate(ctx, *id, *device)
		if err != nil {
			return err
		}
		return printJSON(account)

	case "add-ble", "remove-ble":
		fs := flag.NewFlagSet(command, flag.ExitOnError)
		id := fs.Int64("id", 0, "user id")
		ble := fs.String("ble", "", "8-character ble beacon id")
		fs.Parse(args)

		mutate := client.AddBleID
		if command == "remove-ble" {
			mutate = client.RemoveBleID
		}
		account, err := mutate(ctx, *id, *ble)
		if err != nil {
			return err
		}
		return printJSON(account)

	case "reset-password", "reset-secret-code":
		fs := flag.NewFlagSet(command, flag.ExitOnError)
		id := fs.Int64("id", 0, "user id")
		fs.Parse(args)

		reset := client.ResetPassword
		if command == "reset-secret-code" {
			reset = client.ResetSecretCode
		}
		account, err := reset(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(account)

	case "delete":
		fs := flag.NewFlagSet("delete", flag.ExitOnError)
		id := fs.Int64("id", 0, "user id")
		fs.Parse(args)

		if err := client.DeleteAccount(ctx, *id); err != nil {
			return err
		}
		fmt.Printf("account %d deleted\n", *id)
		return nil

	case "devices":
		bindings, err := client.ListDeviceBindings(ctx)
		if err != nil {
			return err
		}
		return printJSON(bindings)

	case "ble-usage":
		fs := flag.NewFlagSet("ble-usage", flag.ExitOnError)
		ble := fs.String("ble", "", "filter by beacon id")
		user := fs.Int64("user", 0, "filter by user id")
		phone := fs.String("phone", "", "filter by phone")
		limit := fs.Uint64("limit", 0, "row limit")
		fs.Parse(args)

		usages, err := client.ListBleUsage(ctx, models.BleUsageFilter{
			BleID:  *ble,
			UserID: *user,
			Phone:  *phone,
			Limit:  *limit,
		})
		if err != nil {
			return err
		}
		return printJSON(usages)

	case "login-history":
		fs := flag.NewFlagSet("login-history", flag.ExitOnError)
		user := fs.Int64("user", 0, "filter by user id")
		phone := fs.String("phone", "", "filter by phone")
		device := fs.String("device", "", "filter by device id")
		limit := fs.Uint64("limit", 0, "row limit")
		fs.Parse(args)

		entries, err := client.ListLoginHistory(ctx, models.LoginHistoryFilter{
			UserID:   *user,
			Phone:    *phone,
			DeviceID: *device,
			Limit:    *limit,
		})
		if err != nil {
			return err
		}
		return printJSON(entries)

	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: adminctl [-addr URL] [-token TOKEN] <command> [flags]

commands:
  login             -email -password
  verify
  signup            -name -phone
  get               -id
  list              [-limit] [-offset]
  status            -id -status [-device]
  add-device        -id -device
  remove-device     -id -device
  add-ble           -id -ble
  remove-ble        -id -ble
  reset-password    -id
  reset-secret-code -id
  delete            -id
  devices
  ble-usage         [-ble] [-user] [-phone] [-limit]
  login-history     [-user] [-phone] [-device] [-limit]`)
}
