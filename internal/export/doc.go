// Package export renders every registered preview to static files and
// publishes them to a directory or an S3 bucket.
//
// The layout of an export is:
//
//	index.html           list of previews
//	theme.css            shared stylesheet
//	manifest.json        previews, controls and default code
//	<name>/index.html    standalone page
//	<name>/embed.html    widget fragment
//	<name>/code.txt      code for the default selection
//
// Exported widgets are snapshots of the default selection. Pages inline the
// stylesheet so they render without the server.
package export
