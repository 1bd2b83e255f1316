package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/ManuSekhon/algorithms-specialization-stanford/unionfind"
)

var (
	app = kingpin.New("unionfind", "disjoint-set (union-find) demonstration tool")
)

var (
	demoCmd = app.Command("demo", "run the add/union/find walkthrough")
)

func demoFn() error {
	d := unionfind.New()
	for i := int64(1); i <= 10; i++ {
		d.Add(i)
	}
	fmt.Println(d)
	d.Union(1, 2)
	d.Union(3, 5)
	d.Union(3, 6)
	fmt.Println(d)
	fmt.Println("Find(5):", d.Find(5))
	fmt.Println("Find(6):", d.Find(6))
	fmt.Println("Find(1):", d.Find(1))
	return nil
}

// Builds the walkthrough structure: elements 1..10 with (1,2), (3,5)
// and (3,6) unified.
func demoSet() *unionfind.DisjointSet {
	d := unionfind.New()
	for i := int64(1); i <= 10; i++ {
		d.Add(i)
	}
	d.Union(1, 2)
	d.Union(3, 5)
	d.Union(3, 6)
	return d
}

var (
	dumpCmd = app.Command("dump", "print the walkthrough structure as a rank/parent table")
)

func dumpFn() error {
	d := demoSet()
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Element", "Rank", "Parent", "Root"})
	for _, rec := range d.Records() {
		table.Append([]string{
			strconv.FormatInt(rec.Element, 10),
			strconv.Itoa(rec.Rank),
			strconv.FormatInt(rec.Parent, 10),
			strconv.FormatInt(d.Find(rec.Element), 10),
		})
	}
	table.Render()
	fmt.Println("elements", d.Len())
	fmt.Println("sets", d.Count())
	return nil
}

var (
	componentsCmd   = app.Command("components", "union element pairs and print the partition")
	componentsPairs = componentsCmd.Arg("pairs", "element pairs, e.g. 1,2 3,5").Required().Strings()
)

func parsePair(s string) (int64, int64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid pair: %s", s)
	}
	x, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid pair element: %s", err)
	}
	y, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid pair element: %s", err)
	}
	return x, y, nil
}

func componentsFn() error {
	d := unionfind.New()
	for _, arg := range *componentsPairs {
		x, y, err := parsePair(arg)
		if err != nil {
			return err
		}
		// Blind re-adds would reset elements already unified.
		if !d.Contains(x) {
			d.Add(x)
		}
		if !d.Contains(y) {
			d.Add(y)
		}
		d.Union(x, y)
	}
	for _, set := range d.Sets() {
		fmt.Println(set)
	}
	fmt.Println("sets", d.Count())
	return nil
}

var (
	stressCmd      = app.Command("stress", "time random unions over a dense universe")
	stressElements = stressCmd.Flag("elements", "universe size").Default("1000000").Int()
	stressUnions   = stressCmd.Flag("unions", "number of random unions").Default("2000000").Int()
	stressSeed     = stressCmd.Flag("seed", "random seed").Default("1").Int64()
)

func stressFn() error {
	if *stressElements <= 0 {
		return fmt.Errorf("invalid universe size: %d", *stressElements)
	}
	start := time.Now()
	u := unionfind.NewDense(*stressElements)
	rng := rand.New(rand.NewSource(*stressSeed))
	for i := 0; i < *stressUnions; i++ {
		u.Union(rng.Intn(u.Len()), rng.Intn(u.Len()))
		if (i+1)%500000 == 0 {
			fmt.Println("unions", i+1)
		}
	}
	sets := u.Count()
	duration := time.Since(start)
	fmt.Printf("%s unions over %s elements in %.2fs\n",
		humanize.Comma(int64(*stressUnions)),
		humanize.Comma(int64(*stressElements)),
		duration.Seconds())
	fmt.Println("sets", humanize.Comma(int64(sets)))
	return nil
}

func dispatch() error {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))
	switch cmd {
	case demoCmd.FullCommand():
		return demoFn()
	case dumpCmd.FullCommand():
		return dumpFn()
	case componentsCmd.FullCommand():
		return componentsFn()
	case stressCmd.FullCommand():
		return stressFn()
	}
	return fmt.Errorf("unknown command: %s", cmd)
}

func main() {
	err := dispatch()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
