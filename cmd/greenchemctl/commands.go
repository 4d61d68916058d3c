package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/scies/greenchem/models"
)

func runSearch(client *apiClient, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: search <CAS> <purpose>")
	}

	result, err := client.Search(args[0], args[1])
	if err != nil {
		return err
	}

	if !result.Found {
		fmt.Println("未找到结果")
		if result.ContactEmail != "" {
			fmt.Printf("如需补充请联系 %s\n", result.ContactEmail)
		}
		return nil
	}

	record := result.Record
	fmt.Printf("%s (CAS号: %s)\n", record.Name, record.CAS)
	fmt.Printf("毒性分级: %s\n", result.TierDescription)
	if record.LimitRequirement != "" {
		fmt.Printf("涂料现行标准限量要求: %s\n", record.LimitRequirement)
	}
	if record.ControlRequirement != "" {
		fmt.Printf("我国新污染物相关管理要求: %s\n", record.ControlRequirement)
	}

	return nil
}

func runUser(client *apiClient, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: user <list|create|delete|reset-password> ...")
	}

	switch args[0] {
	case "list":
		users, err := client.ListUsers()
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "USERNAME\tNAME\tEMAIL\tROLE")
		for _, user := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", user.Username, user.Name, user.Email, user.Role)
		}
		return w.Flush()

	case "create":
		if len(args) != 5 {
			return fmt.Errorf("usage: user create <username> <name> <email> <password>")
		}
		created, err := client.CreateUser(models.CreateUserRequest{
			Username: args[1],
			Name:     args[2],
			Email:    args[3],
			Password: args[4],
		})
		if err != nil {
			return err
		}
		fmt.Printf("created user %s (%s)\n", created.Username, created.Role)
		return nil

	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: user delete <username>")
		}
		if err := client.DeleteUser(args[1]); err != nil {
			return err
		}
		fmt.Printf("deleted user %s\n", args[1])
		return nil

	case "reset-password":
		if len(args) != 3 {
			return fmt.Errorf("usage: user reset-password <username> <new-password>")
		}
		if err := client.ResetPassword(args[1], args[2]); err != nil {
			return err
		}
		fmt.Printf("password reset for %s\n", args[1])
		return nil

	default:
		return fmt.Errorf("unknown user subcommand %q", args[0])
	}
}

func runLogs(client *apiClient, args []string) error {
	sub := "list"
	if len(args) > 0 && (args[0] == "export" || args[0] == "stats") {
		sub = args[0]
		args = args[1:]
	}

	fs := flag.NewFlagSet("logs", flag.ContinueOnError)
	start := fs.String("start", "", "start date (YYYY-MM-DD)")
	end := fs.String("end", "", "end date (YYYY-MM-DD)")
	output := fs.String("o", "query_logs.csv", "output file for export")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch sub {
	case "list":
		entries, err := client.ListLogs(*start, *end)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "USERNAME\tCAS\tPURPOSE\tTIME\tRESULT")
		for _, entry := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				entry.Username, entry.CAS, entry.UsagePurpose,
				entry.Timestamp.Format(models.QueryLogTimeFormat), entry.ResultSummary)
		}
		return w.Flush()

	case "export":
		if err := client.ExportLogs(*start, *end, *output); err != nil {
			return err
		}
		fmt.Printf("exported query logs to %s\n", *output)
		return nil

	case "stats":
		stats, err := client.LogStats(*start, *end)
		if err != nil {
			return err
		}
		fmt.Printf("total: %d\n", stats.Total)

		users := make([]string, 0, len(stats.ByUser))
		for user := range stats.ByUser {
			users = append(users, user)
		}
		sort.Strings(users)
		for _, user := range users {
			fmt.Printf("  %s: %d\n", user, stats.ByUser[user])
		}

		dates := make([]string, 0, len(stats.ByDate))
		for date := range stats.ByDate {
			dates = append(dates, date)
		}
		sort.Strings(dates)
		for _, date := range dates {
			fmt.Printf("  %s: %d\n", date, stats.ByDate[date])
		}
		return nil
	}

	return nil
}
