//go:build !mobile

// stub.go - 非移动端构建时的占位文件
//
// 普通构建时只编译此文件；移动端入口 mobile.go 和资源声明 embed.go
// 仅在使用 -tags mobile 时编译。
package mobile

// Dummy 是一个空导出函数，确保包在非移动端构建时也能被引用
func Dummy() {}
