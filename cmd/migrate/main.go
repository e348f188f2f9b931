package main

import (
	"fmt"
	"log"
	"os"

	"github.com/oshaberi-project/oshaberi_backend/internal/config"
	"github.com/oshaberi-project/oshaberi_backend/internal/models"
)

func main() {
	// 引数をチェック
	if len(os.Args) < 2 {
		log.Fatal("使用方法: migrate [up|down]")
	}

	// 設定をロード
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// データベース接続
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("データベース接続に失敗しました: %v", err)
	}

	switch os.Args[1] {
	case "up":
		// マイグレーションを実行
		err = db.AutoMigrate(
			&models.User{},
			&models.AiModel{},
			&models.AiModelComment{},
			&models.FavoriteAiModel{},
		)
		if err != nil {
			log.Fatalf("マイグレーションに失敗しました: %v", err)
		}
		fmt.Println("マイグレーションが成功しました")

	case "down":
		// テーブルを削除（逆順）
		err = db.Migrator().DropTable(
			&models.FavoriteAiModel{},
			&models.AiModelComment{},
			&models.AiModel{},
			&models.User{},
		)
		if err != nil {
			log.Fatalf("テーブルの削除に失敗しました: %v", err)
		}
		fmt.Println("テーブルを削除しました")

	default:
		log.Fatal("使用方法: migrate [up|down]")
	}
}
