package main

import (
	"github.com/xcqa/xcqa-query-relayer/cmd/xcqa_query_relayer/cmd"
)

func main() {
	cmd.Execute()
}
