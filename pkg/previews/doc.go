// Package previews declares the Galaxy component previews shown in the
// documentation: button, select and switch. Each one is a control schema
// plus a renderer factory; Mount turns a definition into a live harness.
package previews
