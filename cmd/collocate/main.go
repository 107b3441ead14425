// SPDX-License-Identifier: MIT

// Command collocate estimates measurement error statistics of collocated
// series stored in a CSV table (one column per observing system).
//
//	collocate tc data.csv --columns insitu,radar,model
//	collocate ec data.csv --groups 0,0,1,2 --symmetric --format csv
package main

import (
	"context"

	"github.com/spf13/cobra"
)

func main() {
	cobra.CheckErr(NewCmd().ExecuteContext(context.Background()))
}
