// greenchemctl is a small command-line client for the greenchem server.
//
// It logs in with the given credentials and runs a single admin or lookup
// command against the REST API:
//
//	greenchemctl -server http://localhost:8080 -u admin -p admin123 user list
//	greenchemctl -server http://localhost:8080 -u admin -p admin123 user create zhangsan 张三 z@scies.org secret
//	greenchemctl -server http://localhost:8080 -u admin -p admin123 user delete zhangsan
//	greenchemctl -server http://localhost:8080 -u admin -p admin123 user reset-password zhangsan newpass
//	greenchemctl -server http://localhost:8080 -u admin -p admin123 logs -start 2024-05-01 -end 2024-05-31
//	greenchemctl -server http://localhost:8080 -u admin -p admin123 logs export -o logs.csv
//	greenchemctl -server http://localhost:8080 -u admin -p admin123 logs stats
//	greenchemctl -server http://localhost:8080 -u zhangsan -p secret search 100-42-5 溶剂
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/scies/greenchem/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "greenchem server base URL")
	username := flag.String("u", "", "username")
	password := flag.String("p", "", "password")
	showVersion := flag.Bool("version", false, "print build info and exit")
	flag.Parse()

	if *showVersion {
		printBuildInfo()
		return
	}

	log := logger.NewLogger("greenchemctl")

	if *username == "" || *password == "" {
		log.Fatal().Msg("both -u and -p are required")
	}
	if flag.NArg() == 0 {
		log.Fatal().Msg("no command given, expected one of: search, user, logs")
	}

	client := newAPIClient(*serverURL, log)
	if err := client.Login(*username, *password); err != nil {
		log.Fatal().Err(err).Msg("login failed")
	}

	if err := runCommand(client, flag.Args()); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func runCommand(client *apiClient, args []string) error {
	switch args[0] {
	case "search":
		return runSearch(client, args[1:])
	case "user":
		return runUser(client, args[1:])
	case "logs":
		return runLogs(client, args[1:])
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(os.Stdout, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stdout, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stdout, "Build commit: %s\n", buildCommit)
}
