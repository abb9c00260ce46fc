package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-intake/pkg/catalog"
	"github.com/goliatone/go-intake/pkg/codec"
	exportopenapi "github.com/goliatone/go-intake/pkg/export/openapi"
	"github.com/goliatone/go-intake/pkg/fill"
	"github.com/goliatone/go-intake/pkg/validation"
	"github.com/goliatone/go-intake/pkg/visibility"
)

func main() {
	action := flag.String("action", "validate", "one of: validate, fill, export, areas")
	source := flag.String("source", "", "form definition path (.json, .yaml)")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	switch *action {
	case "areas":
		printAreas(ctx)
		return
	case "validate", "fill", "export":
	default:
		log.Fatalf("unknown action %q", *action)
	}

	if *source == "" {
		log.Fatal("a form definition is required; pass -source")
	}
	form, err := codec.Load(*source)
	if err != nil {
		log.Fatalf("Failed to load form: %v", err)
	}

	switch *action {
	case "validate":
		result := validation.ValidateForm(form)
		warnings := visibility.New(form).Warnings()
		for key, msg := range result {
			fmt.Printf("error\t%s\t%s\n", key, msg)
		}
		for _, w := range warnings {
			fmt.Printf("warning\t%s\t%s\n", w.Owner, w.Reason)
		}
		if !result.Valid() {
			os.Exit(1)
		}
		fmt.Println("form is valid")

	case "fill":
		answers, err := fill.New().Run(ctx, form, nil)
		if err != nil {
			log.Fatalf("Fill session failed: %v", err)
		}
		data, err := json.MarshalIndent(answers, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode answers: %v", err)
		}
		emit(*output, data)

	case "export":
		data, err := exportopenapi.Marshal(form)
		if err != nil {
			log.Fatalf("Failed to export submission schema: %v", err)
		}
		emit(*output, data)
	}
}

func printAreas(ctx context.Context) {
	areas, err := catalog.Default().PracticeAreas(ctx)
	if err != nil {
		log.Fatalf("Failed to list practice areas: %v", err)
	}
	for _, area := range areas {
		fmt.Printf("%s\t%s\n", area.ID, area.Label)
	}
}

func emit(path string, data []byte) {
	if path == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	fmt.Printf("Written to %s\n", path)
}
