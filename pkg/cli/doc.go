// Package cli implements the archpath command-line interface.
//
// # Overview
//
// archpath decides which CPU-microarchitecture-optimized subdirectory of a
// centrally distributed, read-only software stack the current host should
// activate, and verifies the prerequisites shell init glue depends on.
//
// # Commands
//
// resolve - print the subdirectory for this host:
//
//	archpath resolve /cvmfs/stack
//
// Writes exactly one line (e.g. x86_64/intel/haswell) to stdout, or nothing
// plus a non-zero exit when no compatible subdirectory exists.
//
// detect - show the detected CPU:
//
//	archpath detect [--format yaml|json|table] [--output FILE]
//
// list - show which variants the stack ships:
//
//	archpath list /cvmfs/stack
//
// check - verify activation prerequisites, naming the first failure:
//
//	archpath check /cvmfs/stack
//
// env - emit export lines for shell consumption:
//
//	eval "$(archpath env /cvmfs/stack)"
//
// # Environment Variables
//
//	ARCHPATH_SUBDIR_OVERRIDE  Force a subdirectory, bypassing detection
//	ARCHPATH_CPU_MAP          YAML file replacing built-in compat chains
//	LOG_LEVEL                 Logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success
//	1  Failure (no compatible subdirectory, failed check, bad input)
package cli
