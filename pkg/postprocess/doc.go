// Package postprocess rewrites a rendered tree so it follows the host's prop
// conventions: the logical tag is stamped, additional class names and styles
// are merged into the root, the root gets the commit ref, and ephemeral
// props are stripped.
//
// Every function returns new nodes and leaves its input untouched.
package postprocess
