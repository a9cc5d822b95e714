package main

import "github.com/posturekit/posturekit/cmd/posturekit"

func main() { posturekit.Execute() }
