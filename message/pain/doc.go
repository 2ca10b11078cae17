// Package pain holds the Payments Initiation mandate copy request.
//
// Importing the package registers MandateCopyRequestV04 under
// pain.017.001.04, which lets document.Parse recognise it.
package pain
