// Package config manages arcadehub settings stored at ~/.arcadehub/config.yaml.
// Values can be overridden through ARCADEHUB_* environment variables. It also
// resolves the Arcade Hub site layout (games, images, registry script,
// proposals) relative to a site root.
package config
