package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/people-search/internal/display"
	"github.com/sells-group/people-search/internal/search"
)

var (
	searchName    string
	searchCompany string
	searchLimit   int
	searchWeb     bool
	searchOutput  string
)

type searchOutputDoc struct {
	Success bool             `json:"success" yaml:"success"`
	Count   int              `json:"count" yaml:"count"`
	Results []display.Record `json:"results" yaml:"results"`
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search for a person and print normalized profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		s, err := newSearcher()
		if err != nil {
			return err
		}

		req := search.Request{Name: searchName, Company: searchCompany, Limit: searchLimit}

		res := s.SearchPeople(ctx, req)
		if res.Failed() {
			return eris.Errorf("search failed (status %d): %s", res.StatusCode, res.Error)
		}

		profiles := res.Profiles
		if searchWeb {
			profiles = append(profiles, s.SearchWeb(ctx, req)...)
		}

		records := make([]display.Record, 0, len(profiles))
		for _, p := range profiles {
			records = append(records, display.FromProfile(p))
		}

		doc := searchOutputDoc{Success: true, Count: len(records), Results: records}

		switch searchOutput {
		case "yaml":
			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			if err := enc.Encode(doc); err != nil {
				return eris.Wrap(err, "encode yaml")
			}
			return enc.Close()
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		default:
			return eris.Errorf("unknown output format %q", searchOutput)
		}
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchName, "name", "", "person full name (required)")
	searchCmd.Flags().StringVar(&searchCompany, "company", "", "optional company filter")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "max results (default from config)")
	searchCmd.Flags().BoolVar(&searchWeb, "web", false, "append web search results")
	searchCmd.Flags().StringVar(&searchOutput, "output", "json", "output format: json or yaml")
	_ = searchCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(searchCmd)
}
