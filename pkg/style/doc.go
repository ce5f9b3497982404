// Package style holds the colors and styles of settingsguard's terminal
// output. Colors adapt to light and dark terminals.
package style
