// Command keywords is a manual harness for the extraction pipeline: it reads
// text from a file argument or stdin and prints the ranked phrases and
// keywords.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/kittclouds/rakekit/pkg/postag"
	"github.com/kittclouds/rakekit/pkg/rake"
)

func main() {
	lang := flag.String("lang", "en", "language code for the default stopword set")
	top := flag.Int("top", 10, "number of results to print per section")
	tags := flag.String("tags", "", "comma-separated POS tags to keep (e.g. NN,NNS); enables the role filter")
	stops := flag.String("stop", "", "comma-separated extra stopwords")
	flag.Parse()

	text, err := readInput(flag.Args())
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	opts := rake.DefaultOptions()
	opts.Language = *lang
	if *stops != "" {
		opts.AdditionalStopWords = strings.Split(*stops, ",")
	}
	if *tags != "" {
		opts.AllowedRoleTags = strings.Split(*tags, ",")
		opts.Tagger = postag.NewPerceptron()
	}

	fmt.Println("Phrases:")
	printScored(rake.ExtractScored(text, opts), *top)

	fmt.Println("\nKeywords:")
	printScored(rake.ExtractKeywordsScored(text, opts), *top)
}

func readInput(args []string) (string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		return string(data), err
	}
	data, err := io.ReadAll(os.Stdin)
	return string(data), err
}

func printScored(items []rake.Scored, top int) {
	for i, item := range items {
		if top > 0 && i >= top {
			break
		}
		fmt.Printf("  %6.2f  %s\n", item.Score, item.Text)
	}
	if len(items) == 0 {
		fmt.Println("  (none)")
	}
}
