// Command cartella 本地购物车命令行：浏览远端目录、管理收藏、购物车、账号与支付卡。
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newCLI().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
