// Package confmix unifies YAML, TOML, JSON and INI configuration loading and
// dumping behind one format-agnostic interface. The YAML path layers three
// config conveniences on top: !include and !ENV tag extensions,
// template-string resolution, and multi-file inheritance via the INHERIT
// directive (see the yamlconf package).
package confmix
