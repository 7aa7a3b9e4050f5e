package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/scriptorch/orch"
	"github.com/scriptorch/orch/lib/inject"
	"github.com/scriptorch/orch/lib/manifest"
	"github.com/scriptorch/orch/lib/minify"
	"github.com/scriptorch/orch/lib/push"
	"github.com/scriptorch/orch/lib/utils"
	"github.com/ysmood/kit"
)

// Version of the tool
const Version = "v0.1.0"

func main() {
	app := kit.TasksNew("scriptorch", "a cli tool to serve a page with orchestrated scripts")
	app.Version(Version)

	kit.Tasks().App(app).Add(kit.Task("serve", "serve a page with the manifest's scripts injected").Init(func(cmd kit.TaskCmd) func() {
		cmd.Default()
		page := cmd.Arg("page", "the html file to serve").Required().String()
		mf := cmd.Flag("manifest", "the json script manifest to inject").Short('m').String()
		addr := cmd.Flag("address", "the address to listen to").Short('a').Default(":7317").String()
		min := cmd.Flag("minify", "minify inline code before injection").Bool()

		return func() {
			serve(*page, *mf, *addr, *min)
		}
	})).Do()
}

func serve(page, mf, addr string, min bool) {
	doc, err := os.ReadFile(page)
	utils.E(err)

	set := orch.NewSet()
	if mf != "" {
		bin, err := os.ReadFile(mf)
		utils.E(err)
		list, err := manifest.Load(bin)
		utils.E(err)
		set.Add(list...)
	}

	if min {
		minified := []orch.ScriptEntry{}
		for _, e := range set.List() {
			if e.IsInline() {
				res := minify.Default(context.Background(), e.InlineCode)
				e.InlineCode = res.Code
			}
			minified = append(minified, e)
		}
		set = orch.NewSet(minified...)
	}

	hub := push.NewHub()

	srv := kit.MustServer(addr)
	host := srv.Listener.Addr().String()

	// the page subscribes itself to the push endpoint
	set.Add(orch.ScriptEntry{InlineCode: push.Bootstrap("ws://" + host + "/push")})

	srv.Engine.GET("/", inject.Handler(string(doc), set))
	srv.Engine.GET("/push", gin.WrapH(hub))
	srv.Engine.POST("/publish", func(c *gin.Context) {
		bin, err := c.GetRawData()
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		code := orch.WrapFnCode(string(bin))
		if min {
			code = minify.Default(c.Request.Context(), code).Code
		}
		go hub.Publish(code)
		c.String(http.StatusOK, "ok")
	})

	fmt.Println("Serving", page, "on", kit.C("http://"+host, "green"))
	srv.MustDo()
}
