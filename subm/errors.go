package subm

import "github.com/handlewall/backend/srvcerror"

func newErrCreateFailed() *srvcerror.Error {
	return srvcerror.ErrInternal("Error creating submission")
}

func newErrListFailed() *srvcerror.Error {
	return srvcerror.ErrInternal("Error fetching submissions")
}
