// Package config loads retrosolve's run configuration from three
// layered sources, lowest priority first: built-in defaults, an
// optional YAML file, then environment variables prefixed
// RETROSOLVE_. Later sources override earlier ones key by key.
//
// An environment variable name is mapped to a key by dropping the
// prefix, lower-casing, and turning every underscore into a key
// separator (RETROSOLVE_PUZZLE_NAME sets puzzle.name). Keys whose own
// name contains an underscore (puzzle.map_path, solver.save_path and
// the log.file_path/max_* keys) therefore cannot be set from the
// environment.
package config
