package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

type SubmitRequest struct {
	Url        string `json:"url"`
	CustomCode string `json:"custom_code,omitempty"`
}

type SubmitResponse struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// SubmissionServiceServer is the server API for SubmissionService service.
type SubmissionServiceServer interface {
	Submit(context.Context, *SubmitRequest) (*SubmitResponse, error)
	GetState(context.Context, *emptypb.Empty) (*SubmitResponse, error)
}

// UnimplementedSubmissionServiceServer can be embedded to have forward compatible implementations.
type UnimplementedSubmissionServiceServer struct{}

func (*UnimplementedSubmissionServiceServer) Submit(context.Context, *SubmitRequest) (*SubmitResponse, error) {
	return nil, nil
}
func (*UnimplementedSubmissionServiceServer) GetState(context.Context, *emptypb.Empty) (*SubmitResponse, error) {
	return nil, nil
}

func RegisterSubmissionServiceServer(s *grpc.Server, srv SubmissionServiceServer) {
	s.RegisterService(&_SubmissionService_serviceDesc, srv)
}

func _SubmissionService_Submit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SubmissionServiceServer).Submit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/submission.SubmissionService/Submit",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SubmissionServiceServer).Submit(ctx, req.(*SubmitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SubmissionService_GetState_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SubmissionServiceServer).GetState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/submission.SubmissionService/GetState",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SubmissionServiceServer).GetState(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

var _SubmissionService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "submission.SubmissionService",
	HandlerType: (*SubmissionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Submit",
			Handler:    _SubmissionService_Submit_Handler,
		},
		{
			MethodName: "GetState",
			Handler:    _SubmissionService_GetState_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "submission.proto",
}

// SubmissionServiceClient is the client API for SubmissionService service.
type SubmissionServiceClient interface {
	Submit(ctx context.Context, in *SubmitRequest, opts ...grpc.CallOption) (*SubmitResponse, error)
	GetState(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*SubmitResponse, error)
}

type submissionServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSubmissionServiceClient returns a client that speaks the JSON codec.
func NewSubmissionServiceClient(cc grpc.ClientConnInterface) SubmissionServiceClient {
	return &submissionServiceClient{cc: cc}
}

func (c *submissionServiceClient) Submit(ctx context.Context, in *SubmitRequest, opts ...grpc.CallOption) (*SubmitResponse, error) {
	out := new(SubmitResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, "/submission.SubmissionService/Submit", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *submissionServiceClient) GetState(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*SubmitResponse, error) {
	out := new(SubmitResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, "/submission.SubmissionService/GetState", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
