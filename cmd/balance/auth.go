package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"worklife-balance/pkg/gcalendar"
	"worklife-balance/pkg/googleauth"
)

func authCommand() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Authorize read-only Google Calendar access and save the token.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "credentials", Value: "google-credentials.json", Usage: "OAuth desktop client file"},
			&cli.StringFlag{Name: "token", Value: "token.json", Usage: "where to save the token"},
			&cli.StringFlag{Name: "redirect", Value: "http://localhost", Usage: "redirect URL registered on the OAuth client"},
		},
		Action: func(c *cli.Context) error {
			data, err := os.ReadFile(c.String("credentials"))
			if err != nil {
				return fmt.Errorf("failed to read credentials file: %w", err)
			}

			client, err := googleauth.NewFromCredentialsJSON(data, c.String("redirect"))
			if err != nil {
				return err
			}

			fmt.Println("Open this URL in your browser and sign in:")
			fmt.Println()
			fmt.Println(client.AuthCodeURL("balance-cli"))
			fmt.Println()
			fmt.Print("Paste the code parameter from the redirected URL: ")

			reader := bufio.NewReader(os.Stdin)
			code, _ := reader.ReadString('\n')
			code = strings.TrimSpace(code)

			tok, err := client.Exchange(c.Context, code)
			if err != nil {
				return err
			}
			if err := gcalendar.SaveToken(c.String("token"), tok); err != nil {
				return err
			}

			if email, err := client.Email(c.Context, tok); err == nil {
				fmt.Printf("Authorized as %s\n", email)
			}
			fmt.Printf("Token saved to %s\n", c.String("token"))
			return nil
		},
	}
}
