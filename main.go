package main

import (
	"fmt"
	"os"

	"fjacquet/finvision/cmd/batch"
	"fjacquet/finvision/cmd/categorize"
	"fjacquet/finvision/cmd/parse"
	"fjacquet/finvision/cmd/root"
	"fjacquet/finvision/cmd/serve"
	"fjacquet/finvision/cmd/taxonomy"
	"fjacquet/finvision/cmd/total"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(total.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(serve.Cmd)
	root.Cmd.AddCommand(taxonomy.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
