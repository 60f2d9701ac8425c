//go:generate mockgen -destination=./mocks/advisor.go -package=mocks . Advisor

package fsops

// Advisor produces human-readable remediation text for permission
// problems under a root path. Implementations live outside this package;
// the toolkit only quotes their advice in fatal copy errors.
type Advisor interface {
	PermissionAdvice(root string) string
}
