// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log 日志相关接口以及函数
package log

import (
	"runtime"

	"github.com/33cn/twothirds/types"
	log15 "github.com/inconshreveable/log15"
	colorable "github.com/mattn/go-colorable"
	"gopkg.in/natefinch/lumberjack.v2"
)

// 未配置日志文件时使用
const defaultLogFile = "logs/twothirds.log"

// SetLogLevel 只输出到控制台, cli 使用
func SetLogLevel(logLevel string) {
	log15.Root().SetHandler(consoleHandler(logLevel))
}

// SetFileLog 按配置重置全部 handler: 控制台 + 滚动文件
func SetFileLog(cfg *types.Log) {
	if cfg == nil {
		cfg = &types.Log{LogFile: defaultLogFile}
	}
	fillDefaultValue(cfg)
	if cfg.LogFile == "" {
		SetLogLevel(cfg.LogConsoleLevel)
		return
	}
	log15.Root().SetHandler(log15.MultiHandler(consoleHandler(cfg.LogConsoleLevel), fileHandler(cfg)))
}

// 默认 error 级别, 防止打印太多日志
func fillDefaultValue(cfg *types.Log) {
	if cfg.Loglevel == "" {
		cfg.Loglevel = log15.LvlError.String()
	}
	if cfg.LogConsoleLevel == "" {
		cfg.LogConsoleLevel = log15.LvlError.String()
	}
}

func consoleHandler(logLevel string) log15.Handler {
	format := log15.TerminalFormat()
	if runtime.GOOS == "windows" {
		format = log15.LogfmtFormat()
	}
	return log15.LvlFilterHandler(getLevel(logLevel), log15.StreamHandler(colorable.NewColorableStdout(), format))
}

func fileHandler(cfg *types.Log) log15.Handler {
	w := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    int(cfg.MaxFileSize),
		MaxBackups: int(cfg.MaxBackups),
		MaxAge:     int(cfg.MaxAge),
		LocalTime:  cfg.LocalTime,
		Compress:   cfg.Compress,
	}
	h := log15.LvlFilterHandler(getLevel(cfg.Loglevel), log15.StreamHandler(w, log15.LogfmtFormat()))
	if cfg.CallerFile {
		h = log15.CallerFileHandler(h)
	}
	if cfg.CallerFunction {
		h = log15.CallerFuncHandler(h)
	}
	return h
}

// 配置错误时按 error 级别处理
func getLevel(lvl string) log15.Lvl {
	l, err := log15.LvlFromString(lvl)
	if err != nil {
		return log15.LvlError
	}
	return l
}

// New 模块日志, ctx 为 key/value 对
func New(ctx ...interface{}) log15.Logger {
	return log15.Root().New(ctx...)
}

// Discard 关闭全部日志输出, 测试使用
func Discard() {
	log15.Root().SetHandler(log15.DiscardHandler())
}
