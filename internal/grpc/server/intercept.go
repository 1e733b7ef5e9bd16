package grpcserver

import (
	"context"

	"github.com/ak7sky/subnet-quiz/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

func loggerInterceptor(logger logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		logger.Info("rpc %s started", info.FullMethod)
		defer logger.Info("rpc %s finished", info.FullMethod)
		logger.Debug("request data: %v", req)
		res, err := handler(ctx, req)
		if err != nil {
			if code := status.Code(err); code == codes.Internal || code == codes.Unknown {
				logger.Error("error on rpc %s: %v", info.FullMethod, err)
			} else {
				logger.Warn("rejected rpc %s: %v", info.FullMethod, err)
			}
		}
		return res, err
	}
}

func reqValidatorInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if info.FullMethod == QuizService_Check_FullMethodName {
			fields := req.(*structpb.Struct).GetFields()
			if sessID, found := fields[fieldSessionID]; found {
				if _, isStr := sessID.GetKind().(*structpb.Value_StringValue); !isStr {
					return nil, status.Errorf(
						codes.InvalidArgument, "invalid request: %s must be a string", fieldSessionID,
					)
				}
			}
			if fields[fieldAnswers].GetListValue() == nil {
				return nil, status.Errorf(
					codes.InvalidArgument, "invalid request: missed required field (%s list)", fieldAnswers,
				)
			}
		}
		return handler(ctx, req)
	}
}
