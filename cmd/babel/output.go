package main

import (
	"fmt"
	"io"

	"github.com/reusee/babel/searches"
)

func printResult(w io.Writer, res searches.Result) {
	page := res.Page
	fmt.Fprintf(w, "address: %s\n", page.Address())
	fmt.Fprintf(w, "title: %s\n", page.Title)
	if res.Attempts > 0 {
		fmt.Fprintf(w, "attempts: %d\n", res.Attempts)
	}
	if res.Offset >= 0 {
		fmt.Fprintf(w, "offset: %d\n", res.Offset)
	}
	if res.Mode != searches.ModeCoordinates {
		fmt.Fprintf(w, "seed: %d\n", res.Seed)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, page.Content)
}
