// Command lab0 exposes the data preprocessing library as a CLI with four
// command groups: clean, numeric, text and struct. Every command writes
// its primary result as one comma-joined line on stdout; diagnostics and
// optional report lines follow the conventions of the library packages.
package main

func main() {
	Execute()
}
