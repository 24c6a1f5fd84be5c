// Package artifact uploads build artifacts to a storage service.
//
// Every upload is described by an OCI content descriptor carrying the
// file's media type, sha256 digest, size, and the artifact name as
// annotations, so consumers can verify what they download. Two stores are
// provided: [DirStore] copies artifacts into a local directory tree and
// [S3Store] puts them in an S3 bucket. [Open] selects one from a URL.
//
// Example usage:
//
//	store, err := artifact.Open("s3://ci-artifacts/xcresult/")
//	if err != nil {
//	    return err
//	}
//	desc, err := store.Upload(ctx, "App-tests", "build/App.xcresult.zip")
package artifact
