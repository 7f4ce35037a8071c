// Package main provides localization for the trimmonitor CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Configuration": "設定",
		"Logging":       "ログ",
		"Debug":         "デバッグ",
		"Trim":          "トリム",
		"Output":        "出力",

		// Root command
		"Headless trim monitor with match frames":                                                         "マッチフレーム付きヘッドレストリムモニター",
		"trimmonitor extracts match frames and renders the trim monitor of a video editor without a GUI.": "trimmonitorは動画編集ソフトのトリムモニターをGUIなしで描画し、マッチフレームを抽出します。",

		// Global flags
		"YAML configuration file":              "YAML設定ファイル",
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "全てのログ出力を抑制",
		"Enable debug output":                  "デバッグ出力を有効化",
		"Directory for debug output":           "デバッグ出力のディレクトリ",

		// Extract command
		"Extract one frame of a clip as PNG": "クリップの1フレームをPNGとして抽出",
		"Zero-based source frame index":      "ソースのフレーム番号（0始まり）",
		"Output PNG file path (required)":    "出力PNGファイルパス（必須）",

		// Snapshot command
		"Render the trim monitor for a clip edge as PNG":     "クリップ端のトリムモニターをPNGとして描画",
		"Trim side (start, end)":                             "トリムする側（start, end）",
		"Match clip in point (source frame)":                 "マッチクリップのイン点（ソースフレーム）",
		"Match clip out point (source frame)":                "マッチクリップのアウト点（ソースフレーム）",
		"Timeline frame where the edited clip starts":        "編集クリップが始まるタイムラインのフレーム",
		"Current edit position on the timeline":              "タイムライン上の現在の編集位置",
		"Image shown in the live preview area":               "ライブプレビュー領域に表示する画像",
		"Output execution summary to file (Markdown format)": "実行サマリーをファイルに出力（Markdown形式）",
		"Unknown trim mode %q":                               "不明なトリムモード %q",

		// Probe command
		"Show the video profile of a clip": "クリップの動画プロファイルを表示",

		// Version command
		"Show version information": "バージョン情報を表示",
		"trimmonitor version %s":   "trimmonitor バージョン %s",

		// Errors
		"Exactly one SOURCE argument is required": "SOURCE引数を1つだけ指定してください",
		"Interrupted, shutting down...":           "中断されました。シャットダウン中...",

		// Summary content
		"Snapshot Summary":  "スナップショットサマリー",
		"Source":            "ソース",
		"View":              "表示",
		"Extraction":        "抽出",
		"Settings":          "設定",
		"Item":              "項目",
		"Value":             "値",
		"Path":              "パス",
		"Resolution":        "解像度",
		"Frame Rate":        "フレームレート",
		"Codec":             "コーデック",
		"Probed With":       "解析方法",
		"Mode":              "モード",
		"Match Frame":       "マッチフレーム",
		"Edit Position":     "編集位置",
		"Frame":             "フレーム",
		"Duration":          "所要時間",
		"Status":            "状態",
		"OK":                "成功",
		"Failed":            "失敗",
		"N/A":               "なし",
		"Scratch Directory": "作業ディレクトリ",
		"Trim View":         "トリム表示",
		"Poll Interval":     "ポーリング間隔",
		"Timeout":           "タイムアウト",
		"File":              "ファイル",
		"Size":              "サイズ",
		"File Size":         "ファイルサイズ",
		"Enabled":           "有効",
		"Disabled":          "無効",
		"Generated at":      "生成日時",
	})
}
