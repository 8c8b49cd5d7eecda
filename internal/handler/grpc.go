package handler

import (
	"context"

	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/MikhailRaia/url-shortener-client/internal/form"
	"github.com/MikhailRaia/url-shortener-client/internal/proto"
	"github.com/MikhailRaia/url-shortener-client/internal/submission"
)

// SubmissionGRPCServer exposes the controller over gRPC. Submission
// failures travel in the response's error slot, not as gRPC status codes.
type SubmissionGRPCServer struct {
	proto.UnimplementedSubmissionServiceServer
	submitter Submitter
}

func NewSubmissionGRPCServer(submitter Submitter) *SubmissionGRPCServer {
	return &SubmissionGRPCServer{
		submitter: submitter,
	}
}

func (s *SubmissionGRPCServer) Submit(ctx context.Context, req *proto.SubmitRequest) (*proto.SubmitResponse, error) {
	fields := form.Fields{
		submission.FieldURL:        req.Url,
		submission.FieldCustomCode: req.CustomCode,
	}

	return responseOf(s.submitter.Submit(ctx, fields)), nil
}

func (s *SubmissionGRPCServer) GetState(ctx context.Context, _ *emptypb.Empty) (*proto.SubmitResponse, error) {
	return responseOf(s.submitter.State()), nil
}

func responseOf(state submission.State) *proto.SubmitResponse {
	view := state.View()
	return &proto.SubmitResponse{
		Result: view.Result,
		Error:  view.Error,
	}
}
