// Command decimalctl is a small CLI demonstrating decimal parsing and
// arithmetic under a configurable policy.
package main

func main() {
	Execute()
}
