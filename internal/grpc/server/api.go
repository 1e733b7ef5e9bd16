package grpcserver

import (
	"context"

	"github.com/golang/protobuf/ptypes/wrappers"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// The service has no .proto of its own: requests and responses are
// well-known types, so the descriptor is declared here.
const (
	QuizServiceName = "subnetquiz.QuizService"

	QuizService_NewQuiz_FullMethodName = "/" + QuizServiceName + "/NewQuiz"
	QuizService_Reset_FullMethodName   = "/" + QuizServiceName + "/Reset"
	QuizService_Check_FullMethodName   = "/" + QuizServiceName + "/Check"
)

// QuizServiceServer is served under QuizServiceName. NewQuiz and Reset take
// the session id, Check takes {session_id, answers}.
type QuizServiceServer interface {
	NewQuiz(context.Context, *wrappers.StringValue) (*structpb.Struct, error)
	Reset(context.Context, *wrappers.StringValue) (*structpb.Struct, error)
	Check(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func RegisterQuizServiceServer(s grpc.ServiceRegistrar, srv QuizServiceServer) {
	s.RegisterService(&quizServiceDesc, srv)
}

var quizServiceDesc = grpc.ServiceDesc{
	ServiceName: QuizServiceName,
	HandlerType: (*QuizServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "NewQuiz", Handler: newQuizHandler},
		{MethodName: "Reset", Handler: resetHandler},
		{MethodName: "Check", Handler: checkHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "subnetquiz",
}

func newQuizHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrappers.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QuizServiceServer).NewQuiz(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: QuizService_NewQuiz_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(QuizServiceServer).NewQuiz(ctx, req.(*wrappers.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func resetHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrappers.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QuizServiceServer).Reset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: QuizService_Reset_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(QuizServiceServer).Reset(ctx, req.(*wrappers.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func checkHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QuizServiceServer).Check(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: QuizService_Check_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(QuizServiceServer).Check(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}
