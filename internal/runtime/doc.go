// Package runtime provides the execution context for ddfpane commands.
//
// It encapsulates shared dependencies needed by actions, such as the
// configuration, the session, the logger, the git runner and the drive mounter.
package runtime
