package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-ajaxform/components/submit"
)

func main() {
	id := flag.String("id", "save", "button component id")
	templateID := flag.String("template", "", "client template element id")
	target := flag.String("target", "", "CSS selector of the element to update")
	route := flag.String("route", "/api/submit", "submit endpoint path")
	label := flag.String("label", "Submit", "button label")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	component, err := submit.New(*id, *templateID, *target,
		submit.WithRoutePath(*route),
		submit.WithLabel(*label),
	)
	if err != nil {
		log.Fatalf("Failed to build component: %v", err)
	}

	head, err := component.HeadTags()
	if err != nil {
		log.Fatalf("Failed to render head contribution: %v", err)
	}
	markup, err := component.Markup()
	if err != nil {
		log.Fatalf("Failed to render markup: %v", err)
	}

	rendered := head + "\n" + markup

	if *output == "" {
		fmt.Println(rendered)
		return
	}
	if err := os.WriteFile(*output, []byte(rendered), 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *output, err)
	}
	log.Printf("Wrote %s", *output)
}
