package model

// Package model defines the domain data structures shared by the front ends
// and the orchestrator: the run request collected from the user and the run
// result rendered back. Plain value types, no behavior beyond formatting.
