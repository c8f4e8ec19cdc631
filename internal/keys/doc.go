// Package keys locates encrypted key documents and distributes them as
// local environment files.
//
// Lab repositories keep a keys directory of encrypted settings documents
// checked into version control. This package walks up from the working
// directory to find that directory, picks one document at random so users
// spread across the available key sets, and, after the document package
// has decrypted it, flattens the result into .env assignments
// (PARENT__CHILD=value for nested objects).
package keys
