package server

import (
	"context"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LoggingInterceptor は失敗した呼び出しをメソッド名、ステータスコード、所要時間とともに記録します。
func LoggingInterceptor(logger *log.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := next(ctx, req)
		if code := status.Code(err); code != codes.OK {
			logger.Printf("grpc %s failed: code=%s duration=%s err=%v", info.FullMethod, code, time.Since(start), err)
		}
		return resp, err
	}
}
