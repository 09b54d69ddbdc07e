/*
Package filesystem provides filesystem operations with automatic retry logic
for NFS stale file handle errors.

The temp directory the picker writes into is frequently a network mount on
shared hosts. ReadFileWithRetry, WriteFileWithRetry, ReadDirWithRetry and
RemoveWithRetry wrap the corresponding os functions and retry only on ESTALE
(errno 116), with exponential backoff capped at MaxBackoff. Any other error is
returned on the first attempt.

	data, err := filesystem.ReadFileWithRetry(path, filesystem.DefaultRetryConfig())

Metrics are reported through an Observer installed with SetObserver; without
one, recording is skipped.
*/
package filesystem
