// Package capture archives and uploads build result bundles.
//
// A result bundle is a directory written by the build tool containing
// logs, test results, and attachments. Capturing it means checking that it
// exists, compressing it into a PKZip archive next to it (rooted at the
// bundle directory's own name, so extracting the archive recreates the
// bundle), and uploading the archive to an artifact store.
//
// A missing bundle and a failed upload are fatal. A failed archive is not:
// it is logged, no archive is produced, and the upload is skipped.
//
// Example usage:
//
//	result, err := capture.Bundle(ctx, store, capture.Request{
//	    BundlePath: "build/App.xcresult",
//	    Name:       "App-tests",
//	})
package capture
