// Package config provides configuration for composed reducers.
//
// Configuration only exists during initialization: reduction.New reads a
// ReductionConfig, resolves named collaborators such as the observer through
// their registries, and keeps no reference to the config afterwards.
//
// # Layering
//
// Configs are built in layers, each merged over the previous one:
//
//	cfg := config.DefaultReductionConfig("app")   // defaults
//	var loaded config.ReductionConfig
//	json.Unmarshal(data, &loaded)
//	cfg.Merge(&loaded)                            // file
//	err := config.ApplyEnv(&cfg)                  // environment
//
// LoadConfig performs all three steps for a JSON file.
//
// Merge semantics by field type:
//
//   - Strings: Merge if source is non-empty
//   - Pointers: Merge if source is non-nil
//
// # Boolean Fields with Non-False Defaults
//
// Tracing defaults to true, so it is stored as *bool with a "Nil" suffix and
// read through an accessor. A config file that omits "tracing" leaves the
// pointer nil and keeps the default, while an explicit false disables it.
//
// # Environment
//
//	REDUCTION_NAME            overrides Name
//	REDUCTION_OBSERVER        overrides Observer
//	REDUCTION_PATH_SEPARATOR  overrides PathSeparator
//	REDUCTION_TRACING         overrides Tracing (true/false)
package config
