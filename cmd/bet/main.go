package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/urfave/cli/v2"
)

var (
	betDatadir = btcutil.AppDataDir("bet-cli", false)
	statePath  = path.Join(betDatadir, "state.json")
)

func main() {
	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "bet CLI"
	app.Usage = "Command line interface for betd daemon operators and bettors"
	app.Commands = append(
		app.Commands,
		&configCmd,
		&initmarket,
		&listmarkets,
		&closemarket,
		&resolvemarket,
		&cancelmarket,
		&placebet,
		&claim,
		&withdrawfee,
		&balance,
		&faucet,
		&addwebhook,
		&removewebhook,
	)

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

func getState() (map[string]string, error) {
	data := map[string]string{}

	file, err := os.ReadFile(statePath)
	if err != nil {
		return nil, errors.New("get config state error: try 'config init'")
	}
	json.Unmarshal(file, &data)

	return data, nil
}

func setState(data map[string]string) error {
	if _, err := os.Stat(betDatadir); os.IsNotExist(err) {
		os.Mkdir(betDatadir, os.ModeDir|0755)
	}

	currentData, _ := getState()
	if currentData == nil {
		currentData = map[string]string{}
	}
	for key, value := range data {
		currentData[key] = value
	}

	file, err := json.Marshal(currentData)
	if err != nil {
		return err
	}

	return os.WriteFile(statePath, file, 0644)
}

func getIdentity() (string, error) {
	state, err := getState()
	if err != nil {
		return "", err
	}
	identity, ok := state["identity"]
	if !ok || len(identity) <= 0 {
		return "", errors.New("missing identity: try 'config init --identity <name>'")
	}
	return identity, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[bet] %v\n", err)
	os.Exit(1)
}
