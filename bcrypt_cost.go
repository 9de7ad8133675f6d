//go:build !race

package taskmanager

// passwordHashCost trades login latency for brute force resistance.
func passwordHashCost() int {
	return 12
}
