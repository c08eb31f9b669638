// Command generate-demo-page scaffolds a standalone HTML page wired to the
// submit widget: a client template element, a form, the button markup, and
// the head contribution. Missing parameters are collected interactively.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-ajaxform/components/submit"
)

const pageSkeleton = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>ajaxform demo</title>
%s
</head>
<body>
<script id="%s" type="text/x-handlebars-template">
	<p>Name: {{name}}</p>
</script>

<form id="%s">
	<label>Name <input type="text" name="name"></label>
	%s
</form>

<div id="%s"></div>
</body>
</html>
`

func main() {
	templateID := flag.String("template", "", "client template element id")
	target := flag.String("target", "", "CSS selector of the element to update")
	route := flag.String("route", "/api/submit", "submit endpoint path")
	output := flag.String("output", "demo.html", "output HTML file")
	flag.Parse()

	if err := promptMissing(templateID, "Client template element id:"); err != nil {
		log.Fatalf("Prompt failed: %v", err)
	}
	if err := promptMissing(target, "Target CSS selector:"); err != nil {
		log.Fatalf("Prompt failed: %v", err)
	}

	component, err := submit.New("save", *templateID, *target,
		submit.WithRoutePath(*route),
		submit.WithLabel("Save"),
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

	targetID := strings.TrimPrefix(*target, "#")
	page := fmt.Sprintf(pageSkeleton, head, *templateID, component.FormID(), markup, targetID)

	if err := os.WriteFile(*output, []byte(page), 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *output, err)
	}
	log.Printf("Wrote %s", *output)
}

func promptMissing(value *string, message string) error {
	if strings.TrimSpace(*value) != "" {
		return nil
	}
	prompt := &survey.Input{Message: message}
	return survey.AskOne(prompt, value, survey.WithValidator(survey.Required))
}
