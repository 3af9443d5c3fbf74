package main

import (
	"errors"
	"os"

	"imgresize/internal/adapters/converter"
	"imgresize/internal/adapters/file"
	"imgresize/internal/core/domain"
	"imgresize/internal/core/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	loadConfig()
	setupLogging()

	codec := converter.NewImagingCodec(viper.GetInt("resize.jpeg_quality"))
	store := file.NewLocalStore()

	input := viper.GetString("resize.input")
	output := viper.GetString("resize.output")

	placeholder := domain.Placeholder{
		Size: domain.Dimensions{
			Width:  viper.GetInt("placeholder.width"),
			Height: viper.GetInt("placeholder.height"),
		},
		Color: viper.GetString("placeholder.color"),
	}

	_, err := service.NewPlaceholderWriter(codec, store).Ensure(input, placeholder)
	if err != nil {
		log.Error().Err(err).Str("path", input).Msg("could not create placeholder input, provide an image at this path")
		os.Exit(1)
	}

	report, err := service.NewResizer(codec, store).Resize(input, output, viper.GetInt("resize.max_dimension"))
	if err != nil {
		if errors.Is(err, domain.ErrInputNotFound) {
			log.Error().Str("path", input).Msg("input file not found, check the path")
		}
		os.Exit(1)
	}

	log.Info().
		Str("output", report.Output).
		Str("original", report.Original.String()).
		Str("resized", report.Resized.String()).
		Msg("done")
}

func loadConfig() {
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.pretty", true)
	viper.SetDefault("resize.input", "Gemini_Generated_Image_jy8pj9jy8pj9jy8p.png")
	viper.SetDefault("resize.output", "ad_image_800_1.png")
	viper.SetDefault("resize.max_dimension", domain.DefaultMaxDimension)
	viper.SetDefault("resize.jpeg_quality", converter.DefaultJPEGQuality)
	viper.SetDefault("placeholder.width", domain.DefaultPlaceholder.Size.Width)
	viper.SetDefault("placeholder.height", domain.DefaultPlaceholder.Size.Height)
	viper.SetDefault("placeholder.color", domain.DefaultPlaceholder.Color)

	viper.SetEnvPrefix("imgresize")
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal().Err(err).Msg("could not read config file")
		}
		log.Debug().Msg("no config file, using defaults")
	}
}

func setupLogging() {
	if viper.GetBool("log.pretty") {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	var logLevel zerolog.Level

	switch viper.GetString("log.level") {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)
}
