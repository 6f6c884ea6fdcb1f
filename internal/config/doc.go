// Package config resolves where a conversion reads from, where it writes to and
// which title it uses.
//
// Values come from three layers, later ones winning: DefaultConfig, an
// optional YAML file loaded with LoadConfig, and command-line flags merged by
// the CLI.
//
// Example file:
//
//	input:
//	  path: bin/Release/net9.0/MyLib.xml
//	output:
//	  path: docs/MyLib.html
//	document:
//	  title: MyLib API
package config
