package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Monitor view transitions
		"Entering default view":                                    "デフォルト表示に切り替えます",
		"Entering start trim view, match frame %d":                 "開始トリム表示に切り替えます (マッチフレーム %d)",
		"Entering end trim view, match frame %d":                   "終了トリム表示に切り替えます (マッチフレーム %d)",
		"Entering trim view without match clip":                    "マッチクリップなしでトリム表示に切り替えます",
		"Skipping view change while player is rendering":           "プレーヤーのレンダリング中のため表示切り替えをスキップします",
		"Match frame ready: %dx%d (generation %d)":                 "マッチフレーム準備完了: %dx%d (世代 %d)",
		"Discarding stale match frame (generation %d, current %d)": "古いマッチフレームを破棄します (世代 %d, 現在 %d)",

		// Extraction
		"Extracting frame %d from %s":      "%[2]s からフレーム %[1]d を抽出中",
		"Frame written to %s":              "フレームを %s に書き込みました",
		"Waiting for %s to become visible": "%s が見えるまで待機中",

		// Probing
		"Probing %s":                "%s を解析中",
		"Profile: %dx%d @ %.3f fps": "プロファイル: %dx%d @ %.3f fps",

		// CLI
		"Match frame saved to %s":       "マッチフレームを %s に保存しました",
		"Monitor snapshot saved to %s":  "モニターのスナップショットを %s に保存しました",
		"Summary saved to %s":           "サマリーを %s に保存しました",
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",

		// Warnings
		"Match frame extraction failed: %s":             "マッチフレームの抽出に失敗しました: %s",
		"Could not remove match frame: %s":              "マッチフレームを削除できませんでした: %s",
		"Could not save debug output: %s":               "デバッグ出力を保存できませんでした: %s",
		"mp4 probe failed, falling back to ffprobe: %s": "mp4 解析に失敗したため ffprobe を使用します: %s",

		// Errors
		"Failed to extract frame: %s": "フレームの抽出に失敗しました: %s",
		"Failed to probe source: %s":  "ソースの解析に失敗しました: %s",
		"Failed to write output: %s":  "出力の書き込みに失敗しました: %s",
		"Failed to write summary: %s": "サマリーの書き込みに失敗しました: %s",
	})
}
