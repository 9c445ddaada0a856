package httpapi

import (
	"github.com/gin-gonic/gin"

	dhikrdto "mihrab/internal/modules/dhikr/dto"
	dhikrin "mihrab/internal/modules/dhikr/port/in"
	locationdto "mihrab/internal/modules/location/dto"
	locationin "mihrab/internal/modules/location/port/in"
	prayerdto "mihrab/internal/modules/prayer/dto"
	prayerin "mihrab/internal/modules/prayer/port/in"
	qibladto "mihrab/internal/modules/qibla/dto"
	qiblain "mihrab/internal/modules/qibla/port/in"
	qurandto "mihrab/internal/modules/quran/dto"
	quranin "mihrab/internal/modules/quran/port/in"
	settingsdto "mihrab/internal/modules/settings/dto"
	settingsin "mihrab/internal/modules/settings/port/in"
	tasbihin "mihrab/internal/modules/tasbih/port/in"
)

func HealthModule() Module {
	return ModuleFunc(func(g *gin.RouterGroup) {
		g.GET("/health", ResolveEndpoint(func(*gin.Context) (any, *APIError) {
			return gin.H{"status": "ok"}, nil
		}))
	})
}

// GET /api/qibla?lat=&lon=&heading=
func QiblaModule(uc qiblain.Usecase) Module {
	return ModuleFunc(func(g *gin.RouterGroup) {
		g.GET("/qibla", ResolveEndpoint(func(c *gin.Context) (any, *APIError) {
			var in qibladto.DirectionInput
			var apiErr *APIError
			if in.Latitude, apiErr = optionalFloat(c, "lat"); apiErr != nil {
				return nil, apiErr
			}
			if in.Longitude, apiErr = optionalFloat(c, "lon"); apiErr != nil {
				return nil, apiErr
			}
			if in.Heading, apiErr = optionalFloat(c, "heading"); apiErr != nil {
				return nil, apiErr
			}
			out, err := uc.Direction(c.Request.Context(), in)
			if err != nil {
				return nil, fromError(err)
			}
			return out, nil
		}))
	})
}

func TasbihModule(uc tasbihin.Usecase) Module {
	return ModuleFunc(func(g *gin.RouterGroup) {
		g.GET("/tasbih", ResolveEndpoint(func(c *gin.Context) (any, *APIError) {
			out, err := uc.State(c.Request.Context())
			if err != nil {
				return nil, fromError(err)
			}
			return out, nil
		}))
		g.POST("/tasbih/:phrase/increment", ResolveEndpoint(func(c *gin.Context) (any, *APIError) {
			out, err := uc.Increment(c.Request.Context(), c.Param("phrase"))
			if err != nil {
				return nil, fromError(err)
			}
			return out, nil
		}))
		g.POST("/tasbih/reset", ResolveEndpoint(func(c *gin.Context) (any, *APIError) {
			out, err := uc.ResetAll(c.Request.Context())
			if err != nil {
				return nil, fromError(err)
			}
			return out, nil
		}))
	})
}

func DhikrModule(uc dhikrin.Usecase) Module {
	state := func(op func(*gin.Context) (dhikrdto.StateOutput, error)) gin.HandlerFunc {
		return ResolveEndpoint(func(c *gin.Context) (any, *APIError) {
			out, err := op(c)
			if err != nil {
				return nil, fromError(err)
			}
			return out, nil
		})
	}
	return ModuleFunc(func(g *gin.RouterGroup) {
		g.GET("/dhikr", state(func(c *gin.Context) (dhikrdto.StateOutput, error) { return uc.State(c.Request.Context()) }))
		g.POST("/dhikr/tab/:tab", state(func(c *gin.Context) (dhikrdto.StateOutput, error) {
			return uc.SwitchTab(c.Request.Context(), c.Param("tab"))
		}))
		g.POST("/dhikr/next", state(func(c *gin.Context) (dhikrdto.StateOutput, error) { return uc.Next(c.Request.Context()) }))
		g.POST("/dhikr/prev", state(func(c *gin.Context) (dhikrdto.StateOutput, error) { return uc.Previous(c.Request.Context()) }))
		g.POST("/dhikr/advance", state(func(c *gin.Context) (dhikrdto.StateOutput, error) { return uc.Advance(c.Request.Context()) }))
		g.POST("/dhikr/reset", state(func(c *gin.Context) (dhikrdto.StateOutput, error) { return uc.ResetAll(c.Request.Context()) }))
	})
}

func LocationModule(uc locationin.Usecase) Module {
	return ModuleFunc(func(g *gin.RouterGroup) {
		g.GET("/location", ResolveEndpoint(func(c *gin.Context) (any, *APIError) {
			out, err := uc.Current(c.Request.Context())
			if err != nil {
				return nil, fromError(err)
			}
			return out, nil
		}))
		g.POST("/location/detect", ResolveEndpoint(func(c *gin.Context) (any, *APIError) {
			out, err := uc.Detect(c.Request.Context())
			if err != nil {
				return nil, fromError(err)
			}
			return out, nil
		}))
		g.GET("/location/search", ResolveEndpoint(func(c *gin.Context) (any, *APIError) {
			out, err := uc.Search(c.Request.Context(), c.Query("q"))
			if err != nil {
				return nil, fromError(err)
			}
			if out == nil {
				out = []locationdto.LocationOutput{}
			}
			return out, nil
		}))
		g.PUT("/location", ResolveEndpoint(func(c *gin.Context) (any, *APIError) {
			var in locationdto.SelectInput
			if err := c.ShouldBindJSON(&in); err != nil {
				return nil, badRequest(err.Error())
			}
			out, err := uc.Select(c.Request.Context(), in)
			if err != nil {
				return nil, fromError(err)
			}
			return out, nil
		}))
		g.DELETE("/location", ResolveEndpoint(func(c *gin.Context) (any, *APIError) {
			return nil, fromError(uc.Clear(c.Request.Context()))
		}))
	})
}

// GET /api/prayer/today?lat=&lon=&method=
func PrayerModule(uc prayerin.Usecase) Module {
	return ModuleFunc(func(g *gin.RouterGroup) {
		g.GET("/prayer/today", ResolveEndpoint(func(c *gin.Context) (any, *APIError) {
			var in prayerdto.TodayInput
			var apiErr *APIError
			if in.Latitude, apiErr = optionalFloat(c, "lat"); apiErr != nil {
				return nil, apiErr
			}
			if in.Longitude, apiErr = optionalFloat(c, "lon"); apiErr != nil {
				return nil, apiErr
			}
			if in.Method, apiErr = optionalInt(c, "method"); apiErr != nil {
				return nil, apiErr
			}
			out, err := uc.Today(c.Request.Context(), in)
			if err != nil {
				return nil, fromError(err)
			}
			return out, nil
		}))
		g.GET("/prayer/methods", ResolveEndpoint(func(c *gin.Context) (any, *APIError) {
			out, err := uc.Methods(c.Request.Context())
			if err != nil {
				return nil, fromError(err)
			}
			return out, nil
		}))
	})
}

func QuranModule(uc quranin.Usecase) Module {
	return ModuleFunc(func(g *gin.RouterGroup) {
		g.GET("/quran/overview", ResolveEndpoint(func(c *gin.Context) (any, *APIError) {
			out, err := uc.Overview(c.Request.Context())
			if err != nil {
				return nil, fromError(err)
			}
			return out, nil
		}))
		g.GET("/quran/languages", ResolveEndpoint(func(c *gin.Context) (any, *APIError) {
			out, err := uc.Languages(c.Request.Context())
			if err != nil {
				return nil, fromError(err)
			}
			return out, nil
		}))
		g.GET("/quran/reciters", ResolveEndpoint(func(c *gin.Context) (any, *APIError) {
			lang, apiErr := intOrZero(c, "language")
			if apiErr != nil {
				return nil, apiErr
			}
			out, err := uc.Reciters(c.Request.Context(), qurandto.RecitersInput{LanguageID: lang, Query: c.Query("q")})
			if err != nil {
				return nil, fromError(err)
			}
			return out, nil
		}))
		g.GET("/quran/surahs", ResolveEndpoint(func(c *gin.Context) (any, *APIError) {
			out, err := uc.Surahs(c.Request.Context())
			if err != nil {
				return nil, fromError(err)
			}
			return out, nil
		}))
		g.POST("/quran/play", ResolveEndpoint(func(c *gin.Context) (any, *APIError) {
			var in qurandto.PlayInput
			if err := c.ShouldBindJSON(&in); err != nil {
				return nil, badRequest(err.Error())
			}
			out, err := uc.Play(c.Request.Context(), in)
			if err != nil {
				return nil, fromError(err)
			}
			return out, nil
		}))
		g.POST("/quran/stop", ResolveEndpoint(func(c *gin.Context) (any, *APIError) {
			if err := uc.Stop(c.Request.Context()); err != nil {
				return nil, fromError(err)
			}
			return gin.H{"playing": false}, nil
		}))
		g.GET("/quran/now", ResolveEndpoint(func(c *gin.Context) (any, *APIError) {
			out, err := uc.NowPlaying(c.Request.Context())
			if err != nil {
				return nil, fromError(err)
			}
			return out, nil
		}))
	})
}

func SettingsModule(uc settingsin.Usecase) Module {
	return ModuleFunc(func(g *gin.RouterGroup) {
		g.GET("/settings", ResolveEndpoint(func(c *gin.Context) (any, *APIError) {
			out, err := uc.Get(c.Request.Context())
			if err != nil {
				return nil, fromError(err)
			}
			return out, nil
		}))
		g.PATCH("/settings", ResolveEndpoint(func(c *gin.Context) (any, *APIError) {
			var in settingsdto.UpdateInput
			if err := c.ShouldBindJSON(&in); err != nil {
				return nil, badRequest(err.Error())
			}
			out, err := uc.Update(c.Request.Context(), in)
			if err != nil {
				return nil, fromError(err)
			}
			return out, nil
		}))
	})
}
