package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rendis/uiwire/pkg/protocol"
	"github.com/rendis/uiwire/pkg/validate"
)

func runSchema(args []string) {
	cfg := loadConfig()

	fs := flag.NewFlagSet("schema", flag.ExitOnError)
	envelope := fs.String("envelope", "server", "schema to print: server or client")
	verFlag := fs.String("version", cfg.Version, "protocol revision of the server schema: 0.1 or 0.2 (default: 0.2)")
	if err := fs.Parse(args); err != nil {
		os.Exit(2)
	}

	switch *envelope {
	case "client":
		fmt.Println(validate.ClientSchemaDocument())
	case "server":
		doc, err := validate.ServerSchemaDocument(protocol.Version(*verFlag))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(doc)
	default:
		fmt.Fprintln(os.Stderr, "Error: envelope must be server or client")
		os.Exit(2)
	}
}
